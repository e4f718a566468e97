package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another timer instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	minPort = 20000
	maxPort = 39999
)

// InstanceLock keeps a single timer per user session by holding a localhost port.
type InstanceLock struct {
	listener net.Listener
}

// AcquireInstanceLock binds the port derived from appName.
func AcquireInstanceLock(appName string) (*InstanceLock, error) {
	address := fmt.Sprintf("127.0.0.1:%d", PortFor(appName))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAlreadyRunning, address, err)
	}
	return &InstanceLock{listener: listener}, nil
}

// Release frees the lock. It is safe to call on a nil lock and more than once.
func (lock *InstanceLock) Release() error {
	if lock == nil || lock.listener == nil {
		return nil
	}
	err := lock.listener.Close()
	lock.listener = nil
	return err
}

// Address returns the bound address, or "" once released.
func (lock *InstanceLock) Address() string {
	if lock == nil || lock.listener == nil {
		return ""
	}
	return lock.listener.Addr().String()
}

// PortFor maps an application name onto a stable port in the lock range.
func PortFor(appName string) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	rangeSize := maxPort - minPort + 1
	return minPort + int(hash.Sum32()%uint32(rangeSize))
}
