package net

import (
	"fmt"
	"log"
	"net"
	"strconv"
	"strings"
)

// CustomURLScheme prefixes share links handed to viewers.
const CustomURLScheme = "localsketch://"

// OutgoingIP finds the address other machines on the LAN can reach us at.
func OutgoingIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err == nil {
		defer conn.Close()
		return conn.LocalAddr().(*net.UDPAddr).IP.String()
	}
	// no route to the internet; pick the first usable interface
	ifaces, _ := net.Interfaces()
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, _ := iface.Addrs()
		for _, a := range addrs {
			if ipnet, ok := a.(*net.IPNet); ok && ipnet.IP.To4() != nil {
				return ipnet.IP.String()
			}
		}
	}
	log.Println("[MIRROR] No suitable local IP found, share link uses loopback")
	return "127.0.0.1"
}

// ShareLink builds the link a viewer is started with.
func ShareLink(host string, port int) string {
	return CustomURLScheme + net.JoinHostPort(host, strconv.Itoa(port))
}

// MirrorURL turns a share link into the websocket URL of the host's mirror.
// A link without an address returns an empty URL and no error; the caller
// should discover a host instead.
func MirrorURL(link string) (string, error) {
	if !strings.HasPrefix(link, CustomURLScheme) {
		return "", fmt.Errorf("not a %s link: %q", CustomURLScheme, link)
	}
	address := strings.TrimSuffix(strings.TrimPrefix(link, CustomURLScheme), "/")
	if address == "" {
		return "", nil
	}
	if _, _, err := net.SplitHostPort(address); err != nil {
		return "", fmt.Errorf("invalid share link %q: %w", link, err)
	}
	return "ws://" + address + MirrorPath, nil
}
