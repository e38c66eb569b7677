package utils

import (
	"fmt"
	"net"
	"time"
)

// PingAddr checks TCP reachability of a host:port dependency.
func PingAddr(addr string, timeout time.Duration) error {
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	defer conn.Close()

	return nil
}
