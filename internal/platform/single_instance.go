package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"sync"
	"time"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

// InstanceGuard holds the single-instance lock. A later launch that finds
// the lock taken connects to it, which the guard reports as an activation.
type InstanceGuard struct {
	listener net.Listener
	address  string
	once     sync.Once
}

// AcquireSingleInstance binds a deterministic localhost port derived from
// appName. When the port is held by a running instance, that instance is
// poked and ErrAlreadyRunning is returned.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	return acquire(instanceAddress(appName))
}

// acquire reports ErrAlreadyRunning only when something answers on address.
// Any other listen failure is returned as is.
func acquire(address string) (*InstanceGuard, error) {
	listener, err := net.Listen("tcp", address)
	if err == nil {
		return &InstanceGuard{listener: listener, address: address}, nil
	}
	conn, dialErr := net.DialTimeout("tcp", address, time.Second)
	if dialErr != nil {
		return nil, fmt.Errorf("acquire instance lock %s: %w", address, err)
	}
	_ = conn.Close()
	return nil, fmt.Errorf("%w (%s)", ErrAlreadyRunning, address)
}

// OnActivate calls handler for every later launch attempt until Release.
func (guard *InstanceGuard) OnActivate(handler func()) {
	if guard == nil || guard.listener == nil {
		return
	}
	go func() {
		for {
			conn, err := guard.listener.Accept()
			if err != nil {
				return
			}
			_ = conn.Close()
			if handler != nil {
				handler()
			}
		}
	}()
}

// Release frees the single instance lock.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	var err error
	guard.once.Do(func() {
		err = guard.listener.Close()
	})
	return err
}

// Address returns the bound address.
func (guard *InstanceGuard) Address() string {
	if guard == nil {
		return ""
	}
	return guard.address
}

func instanceAddress(appName string) string {
	return fmt.Sprintf("127.0.0.1:%d", portFromName(appName))
}

func portFromName(appName string) int {
	const (
		minPort = 20000
		maxPort = 39999
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	return minPort + int(hash.Sum32()%uint32(maxPort-minPort+1))
}
