// Command kbcomplete-server runs completion as an HTTP/3 service, exposing
// POST /complete and POST /normal-form behind an ephemeral self-signed
// certificate.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/knuthbendix/kbcomplete/internal/rpcserver"
)

func main() {
	var (
		addr         string
		defaultSteps int
	)
	flag.StringVar(&addr, "addr", "localhost:4433", "address to listen on (host:port, port 0 for an ephemeral port)")
	flag.IntVar(&defaultSteps, "default-steps", 50000, "step budget used for requests that omit their own")
	flag.Parse()

	srv, err := rpcserver.New(rpcserver.Options{Addr: addr, DefaultSteps: defaultSteps})
	if err != nil {
		fmt.Fprintln(os.Stderr, "kbcomplete-server:", err)
		os.Exit(1)
	}

	bound, err := srv.Start()
	if err != nil {
		fmt.Fprintln(os.Stderr, "kbcomplete-server:", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "kbcomplete-server: listening on %s (HTTP/3, self-signed)\n", bound)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	fmt.Fprintln(os.Stderr, "kbcomplete-server: shutting down")
	_ = srv.Stop()
}
