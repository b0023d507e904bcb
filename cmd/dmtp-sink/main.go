// dmtp-sink is a TCP listener that accepts OpenDMTP client connections,
// frames and decodes their packets, and logs the decoded events.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/opendmtp/dmtp-codec/pkg/dmtp"
	"github.com/opendmtp/dmtp-codec/pkg/dmtp/event"
	"github.com/opendmtp/dmtp-codec/pkg/dmtp/field"
	"github.com/opendmtp/dmtp-codec/pkg/dmtp/protocol"
)

var (
	port       = flag.Int("port", 31000, "TCP listener port")
	verbose    = flag.Bool("verbose", false, "log a type/length summary line for every packet read")
	requireXOR = flag.Bool("require-xor", false, "reject text frames without a checksum suffix")
	timeout    = flag.Duration("timeout", 5*time.Minute, "connection read timeout")
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: .env present but unreadable: %v", err)
	}

	flag.Parse()
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	printBanner()

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", *port))
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	defer listener.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("shutting down")
		listener.Close()
		os.Exit(0)
	}()

	log.Printf("listening on :%d", *port)
	for {
		conn, err := listener.Accept()
		if err != nil {
			log.Printf("accept: %v", err)
			continue
		}
		go handleConnection(conn)
	}
}

func printBanner() {
	log.Println(strings.Repeat("=", 60))
	log.Println("OpenDMTP sink")
	log.Println(strings.Repeat("=", 60))
	log.Printf("Port:          %d", *port)
	log.Printf("Verbose:       %v", *verbose)
	log.Printf("Require XOR:   %v", *requireXOR)
	log.Printf("Read timeout:  %v", *timeout)
	log.Println(strings.Repeat("=", 60))
}

func handleConnection(conn net.Conn) {
	defer conn.Close()

	remoteAddr := conn.RemoteAddr().String()
	connectedAt := time.Now()
	log.Printf(">>> connection from %s", remoteAddr)

	opts := []dmtp.Option{}
	if *requireXOR {
		opts = append(opts, dmtp.WithRequireXOR())
	}
	session := dmtp.NewSession(opts...)

	br := bufio.NewReader(conn)
	packetCount := 0

	for {
		conn.SetReadDeadline(time.Now().Add(*timeout))

		pkt, err := session.ReadPacket(br)
		if err != nil {
			log.Printf("[%s] %s read stopped: %v", session.ID, remoteAddr, err)
			break
		}
		packetCount++

		if *verbose {
			log.Printf("[%s] pkt #%d: %s", session.ID, packetCount, pkt.String())
		}

		if !dmtp.IsEventPacket(pkt.Type) && pkt.Type != protocol.ClientFormatDefinition {
			continue
		}

		ev, mask, err := session.Decode(pkt)
		if err != nil {
			log.Printf("[%s] decode error on %s: %v", session.ID, pkt.Type, err)
			continue
		}
		if ev == nil {
			log.Printf("[%s] installed custom format from %s", session.ID, pkt.Type)
			continue
		}
		logEvent(session.ID.String(), pkt.Type.String(), ev, mask)
	}

	log.Printf("<<< [%s] %s closed after %s, %d packets",
		session.ID, remoteAddr, time.Since(connectedAt).Round(time.Second), packetCount)
}

func logEvent(sessionID, pktType string, ev *event.Event, mask *event.FieldMask) {
	log.Printf("[%s] %s StatusCode=0x%02X Timestamp=%d Seq=%d",
		sessionID, pktType, ev.StatusCode, ev.Timestamp[0], ev.Sequence)
	if mask.IsSet(field.TypeGPSPoint, 0) {
		log.Printf("[%s]   GPS: %.6f, %.6f (age %ds)", sessionID, ev.GPSPoint[0].Lat(), ev.GPSPoint[0].Lon(), ev.GPSAge)
	}
	if mask.IsSet(field.TypeSpeed, 0) {
		log.Printf("[%s]   Speed: %.1f km/h  Heading: %.1f deg  Altitude: %.1f m", sessionID, ev.Speed, ev.Heading, ev.Altitude)
	}
	if mask.HasUnknownFields() {
		log.Printf("[%s]   (descriptor contained unrecognized field types)", sessionID)
	}
}
