package discovery

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/enbility/zeroconf/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntry(instance string, port int, ips ...string) *zeroconf.ServiceEntry {
	entry := zeroconf.NewServiceEntry(instance, ServiceType, Domain)
	entry.HostName = instance + ".local."
	entry.Port = port
	entry.Text = TXTRecordsToStrings(EncodeServerTXT(&ServerInfo{
		Board:   "board-" + instance,
		Backend: "memory",
		Size:    0x20000,
	}))
	for _, s := range ips {
		ip := net.ParseIP(s)
		if ip.To4() != nil {
			entry.AddrIPv4 = append(entry.AddrIPv4, ip)
		} else {
			entry.AddrIPv6 = append(entry.AddrIPv6, ip)
		}
	}
	return entry
}

func TestEntryToService(t *testing.T) {
	svc := entryToService(testEntry("cam0", 7810, "192.168.1.20", "fe80::1"))
	require.NotNil(t, svc)
	assert.Equal(t, "cam0", svc.Name)
	assert.Equal(t, uint16(7810), svc.Port)
	assert.Equal(t, "board-cam0", svc.Board)
	assert.Equal(t, []string{"192.168.1.20", "fe80::1"}, svc.Addresses)
	assert.Equal(t, "192.168.1.20:7810", svc.Addr())
}

func TestEntryToServiceRejectsForeignTXT(t *testing.T) {
	entry := testEntry("other", 80)
	entry.Text = []string{"path=/"}
	assert.Nil(t, entryToService(entry))
}

func TestServiceAddrFallsBackToHost(t *testing.T) {
	svc := &ServerService{ServerInfo: ServerInfo{Port: 7810}, Host: "cam0.local."}
	assert.Equal(t, "cam0.local.:7810", svc.Addr())

	svc = &ServerService{ServerInfo: ServerInfo{Port: 7810}, Addresses: []string{"fe80::1"}}
	assert.Equal(t, "[fe80::1]:7810", svc.Addr())
}

func TestAggregateMergesAndForgets(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)
	removed := make(chan *zeroconf.ServiceEntry)
	out := make(chan *ServerService)
	done := make(chan struct{})
	go func() {
		defer close(done)
		aggregate(ctx, entries, removed, out)
	}()

	entries <- testEntry("cam0", 7810, "10.0.0.1")
	first := receive(t, out)
	assert.Equal(t, []string{"10.0.0.1"}, first.Addresses)

	// Same instance on a second interface is merged, not re-emitted.
	entries <- testEntry("cam0", 7810, "10.0.1.1")
	entries <- testEntry("cam1", 7810, "10.0.0.2")
	second := receive(t, out)
	assert.Equal(t, "cam1", second.Name)
	assert.Equal(t, []string{"10.0.0.1", "10.0.1.1"}, first.Addresses)

	// Withdrawing every address forgets the instance so it is reported again.
	removed <- testEntry("cam0", 7810, "10.0.0.1", "10.0.1.1")
	entries <- testEntry("cam0", 7810, "10.0.2.1")
	again := receive(t, out)
	assert.Equal(t, "cam0", again.Name)
	assert.Equal(t, []string{"10.0.2.1"}, again.Addresses)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("aggregate did not stop on cancel")
	}
}

func receive(t *testing.T, out <-chan *ServerService) *ServerService {
	t.Helper()
	select {
	case svc := <-out:
		return svc
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for service")
		return nil
	}
}

func TestMergeAndRemoveAddresses(t *testing.T) {
	got := mergeAddresses([]string{"a", "b"}, []string{"b", "c"})
	assert.Equal(t, []string{"a", "b", "c"}, got)

	entry := testEntry("x", 1, "10.0.0.1")
	got = removeAddresses([]string{"10.0.0.1", "10.0.0.2"}, entry)
	assert.Equal(t, []string{"10.0.0.2"}, got)
}

func TestAdvertiserUnknownName(t *testing.T) {
	adv, err := NewMDNSAdvertiser(DefaultAdvertiserConfig())
	require.NoError(t, err)
	defer adv.StopAll()

	assert.ErrorIs(t, adv.Update(&ServerInfo{Name: "missing"}), ErrNotFound)
	assert.ErrorIs(t, adv.Stop("missing"), ErrNotFound)
	assert.ErrorIs(t, adv.Advertise(context.Background(), &ServerInfo{}), ErrEmptyInstanceName)
}

func TestAdvertiserLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("binds multicast sockets")
	}

	adv, err := NewMDNSAdvertiser(DefaultAdvertiserConfig())
	require.NoError(t, err)
	defer adv.StopAll()

	info := &ServerInfo{Name: "ispreg-test", Board: "sim", Backend: "memory", Size: 0x20000}
	if err := adv.Advertise(context.Background(), info); err != nil {
		t.Skipf("mDNS unavailable: %v", err)
	}

	info.ReadOnly = true
	assert.NoError(t, adv.Update(info))
	assert.NoError(t, adv.Stop(info.Name))
	assert.ErrorIs(t, adv.Stop(info.Name), ErrNotFound)
}

func TestBrowserFindTimesOut(t *testing.T) {
	if testing.Short() {
		t.Skip("binds multicast sockets")
	}

	b, err := NewMDNSBrowser(BrowserConfig{BrowseTimeout: 200 * time.Millisecond})
	require.NoError(t, err)
	defer b.Stop()

	_, err = b.Find(context.Background(), "no-such-server-7f3a")
	assert.ErrorIs(t, err, ErrNotFound)
}
