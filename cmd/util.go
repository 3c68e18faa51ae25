package main

import (
	"errors"
	"flag"
)

var ErrUnsupportedType = errors.New("ERR unsupported request type")

type ServerOptions struct {
	Host string
	Port string
}

// Read command line options
func getServerOptions() *ServerOptions {
	var (
		host   string
		port   string
		portSr string
	)

	flag.StringVar(&host, "host", DefaultHost, "Interface to listen on")
	flag.StringVar(&port, "port", "", "Port to run server")
	flag.StringVar(&portSr, "p", "", "Shorthand for port")
	flag.Parse()

	if port == "" {
		if portSr != "" {
			port = portSr
		} else {
			port = DefaultPort
		}
	}

	return &ServerOptions{Host: host, Port: port}
}

// Convert a parsed request to command arguments. Inline requests are split
// on whitespace, RESP arrays must only hold strings.
func requestArgs(req any) ([]string, error) {
	switch req := req.(type) {
	case string:
		return sanitize(req)
	case []any:
		args := make([]string, 0, len(req))
		for _, v := range req {
			s, ok := v.(string)
			if !ok {
				return nil, ErrUnsupportedType
			}
			args = append(args, s)
		}
		return args, nil
	}

	return nil, ErrUnsupportedType
}
