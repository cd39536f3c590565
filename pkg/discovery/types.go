package discovery

import (
	"errors"
	"net"
	"strconv"
	"time"
)

// Service type constants for mDNS.
const (
	// ServiceType is the service type for register servers.
	ServiceType = "_ispreg._tcp"

	// Domain is the mDNS domain.
	Domain = "local"

	// DefaultPort is the default register server port.
	DefaultPort = 7810
)

// TXT record key constants.
const (
	TXTKeyBoard    = "board"  // Board identifier
	TXTKeyBackend  = "be"     // Backend kind
	TXTKeyBase     = "base"   // Window base (hex)
	TXTKeySize     = "size"   // Window size (hex)
	TXTKeyReadOnly = "ro"     // Writes rejected (flag)
	TXTKeyBlocks   = "blocks" // Block names (comma-separated)
	TXTKeyVersion  = "ver"    // Server version (optional)
)

// Timing constants.
const (
	// BrowseTimeout is the default timeout for mDNS browsing.
	BrowseTimeout = 10 * time.Second

	// DefaultTTL is the DNS record TTL used when none is configured.
	DefaultTTL = 120 * time.Second
)

// Limits.
const (
	// MaxInstanceNameLen is the DNS label limit.
	MaxInstanceNameLen = 63

	// MaxTXTValueLen keeps each key=value string within one TXT chunk.
	MaxTXTValueLen = 255
)

// Errors.
var (
	ErrMissingRequired     = errors.New("missing required TXT record")
	ErrInvalidTXTRecord    = errors.New("invalid TXT record")
	ErrInstanceNameTooLong = errors.New("instance name too long")
	ErrEmptyInstanceName   = errors.New("instance name is empty")
	ErrNotFound            = errors.New("server not found")
)

// ServerInfo is what a register server advertises about itself.
type ServerInfo struct {
	// Name is the mDNS instance name.
	Name string

	// Board identifies the board or sensor module.
	Board string

	// Backend is the register backend kind ("memory", "devmem").
	Backend string

	// Base and Size describe the served register window.
	Base uint32
	Size uint32

	// ReadOnly is set when the server rejects writes.
	ReadOnly bool

	// Blocks lists the register blocks the server knows.
	Blocks []string

	// Version is the server software version (optional).
	Version string

	// Port is the TCP port of the register protocol.
	Port uint16
}

// ServerService is a register server found by browsing.
type ServerService struct {
	ServerInfo

	// Host is the advertised host name.
	Host string

	// Addresses holds every IPv4 and IPv6 address seen for the instance.
	Addresses []string
}

// Addr returns a dialable host:port for the service, preferring the first
// advertised address over the host name.
func (s *ServerService) Addr() string {
	host := s.Host
	if len(s.Addresses) > 0 {
		host = s.Addresses[0]
	}
	return net.JoinHostPort(host, strconv.Itoa(int(s.Port)))
}
