// Package platform holds OS-level helpers for the desktop app.
package platform

import (
	"bufio"
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"strings"
	"sync"
	"time"
)

// ErrAlreadyRunning indicates another timer window is already open.
var ErrAlreadyRunning = errors.New("workout timer already running")

const (
	lockPortMin = 20000
	lockPortMax = 39999

	activateCommand = "activate"
	dialTimeout     = 500 * time.Millisecond
)

// InstanceLock keeps a loopback port bound for as long as the app runs. A
// later launch connects to the port to ask this process to come forward.
type InstanceLock struct {
	mu         sync.Mutex
	listener   net.Listener
	onActivate func()
	done       chan struct{}
}

// AcquireSingleInstance binds a localhost port derived from appName. When the
// port is taken it asks the running instance to activate and returns
// ErrAlreadyRunning.
func AcquireSingleInstance(appName string) (*InstanceLock, error) {
	address := LockAddress(appName)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		if notifyErr := notifyRunning(address); notifyErr != nil {
			return nil, fmt.Errorf("%w (%s): %v", ErrAlreadyRunning, address, notifyErr)
		}
		return nil, fmt.Errorf("%w (%s)", ErrAlreadyRunning, address)
	}

	lock := &InstanceLock{listener: listener, done: make(chan struct{})}
	go lock.serve(listener)
	return lock, nil
}

// OnActivate sets the handler run when another launch is rejected. It is
// called from the lock's own goroutine.
func (lock *InstanceLock) OnActivate(handler func()) {
	lock.mu.Lock()
	defer lock.mu.Unlock()
	lock.onActivate = handler
}

// Release frees the lock and waits for the activation listener to stop. It is
// safe on a nil lock and may be called more than once.
func (lock *InstanceLock) Release() error {
	if lock == nil {
		return nil
	}
	lock.mu.Lock()
	listener := lock.listener
	lock.listener = nil
	lock.mu.Unlock()
	if listener == nil {
		return nil
	}

	err := listener.Close()
	<-lock.done
	return err
}

// LockAddress returns the loopback address used for appName.
func LockAddress(appName string) string {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	span := uint32(lockPortMax - lockPortMin + 1)
	return fmt.Sprintf("127.0.0.1:%d", lockPortMin+int(hash.Sum32()%span))
}

func (lock *InstanceLock) serve(listener net.Listener) {
	defer close(lock.done)
	for {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		if readCommand(conn) == activateCommand {
			lock.activate()
		}
	}
}

func (lock *InstanceLock) activate() {
	lock.mu.Lock()
	handler := lock.onActivate
	lock.mu.Unlock()
	if handler != nil {
		handler()
	}
}

func readCommand(conn net.Conn) string {
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(dialTimeout))
	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func notifyRunning(address string) error {
	conn, err := net.DialTimeout("tcp", address, dialTimeout)
	if err != nil {
		return err
	}
	defer conn.Close()
	_ = conn.SetWriteDeadline(time.Now().Add(dialTimeout))
	_, err = fmt.Fprintln(conn, activateCommand)
	return err
}
