package httpapi

import (
	"fmt"
	"net"
)

// Default port range searched when no listen address is given.
const (
	DefaultStartPort = 8080
	DefaultEndPort   = 8099
)

// FindAvailablePort finds an available loopback port in the given range.
func FindAvailablePort(startPort, endPort int) (int, error) {
	for port := startPort; port <= endPort; port++ {
		addr := fmt.Sprintf("127.0.0.1:%d", port)
		listener, err := net.Listen("tcp", addr)
		if err == nil {
			listener.Close()
			return port, nil
		}
	}
	return 0, fmt.Errorf("no available port in range %d-%d", startPort, endPort)
}

// ResolveAddr returns addr, or the first free loopback address in the
// default range when addr is empty.
func ResolveAddr(addr string) (string, error) {
	if addr != "" {
		return addr, nil
	}
	port, err := FindAvailablePort(DefaultStartPort, DefaultEndPort)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("127.0.0.1:%d", port), nil
}
