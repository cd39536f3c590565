// Package discovery implements mDNS/DNS-SD discovery for ISP register servers.
//
// Every isp-regd instance advertises one _ispreg._tcp service. The instance
// name is the user-chosen server name (for example the board hostname).
//
// TXT records describe the register window the server exposes:
//
//   - board: board or sensor-module identifier
//   - be: backend ("memory" or "devmem")
//   - base: window base address (hex)
//   - size: window size in bytes (hex)
//   - ro: present when the server rejects writes
//   - blocks: comma-separated block names served
//   - ver: server version (optional)
//
// Clients browse with MDNSBrowser and connect with remote.Dial using the
// first address and the advertised port.
package discovery
