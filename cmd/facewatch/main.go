// Facewatch streams an image to a running faceserve instance over its
// websocket endpoint and prints each detection reply. Useful for
// eyeballing detector output and for exercising /ws/detect.
package main

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/websocket"
)

var (
	addr     = flag.String("addr", "localhost:8080", "faceserve address")
	interval = flag.Duration("interval", time.Second, "delay between frames")
)

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: facewatch [-addr host:port] [-interval 1s] image.jpg")
		os.Exit(2)
	}

	frame, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "read image: %v\n", err)
		os.Exit(1)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	u := url.URL{Scheme: "ws", Host: *addr, Path: "/ws/detect"}
	fmt.Printf("connecting to %s\n", u.String())

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dial: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		select {
		case <-interrupt:
			conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
				fmt.Fprintf(os.Stderr, "send frame: %v\n", err)
				return
			}
			_, reply, err := conn.ReadMessage()
			if err != nil {
				fmt.Fprintf(os.Stderr, "read reply: %v\n", err)
				return
			}
			fmt.Println(string(reply))
		}
	}
}
