package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"skabillium/txlog/cmd/db"
	"skabillium/txlog/cmd/resp"
)

const TxlogVersion = "0.1.0"
const DefaultHost = "localhost"
const DefaultPort = "5678"

type Server struct {
	opts     *ServerOptions
	db       *db.Database
	ln       net.Listener
	quitCh   chan struct{}
	quitOnce sync.Once

	mu    sync.Mutex
	conns map[net.Conn]struct{}
}

func NewServer(opts *ServerOptions) *Server {
	return &Server{
		opts:   opts,
		db:     db.NewDatabase(),
		quitCh: make(chan struct{}),
		conns:  make(map[net.Conn]struct{}),
	}
}

func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", net.JoinHostPort(s.opts.Host, s.opts.Port))
	if err != nil {
		return err
	}

	s.ln = ln
	fmt.Println("Txlog server started on", ln.Addr())
	return nil
}

func (s *Server) Start() error {
	if err := s.Listen(); err != nil {
		return err
	}
	defer s.ln.Close()

	go s.acceptLoop()
	<-s.quitCh

	return nil
}

// Addr returns the listening address, or "" before Listen succeeded.
func (s *Server) Addr() string {
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Stop closes the listener and every open connection.
func (s *Server) Stop() {
	s.quitOnce.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		close(s.quitCh)
		if s.ln != nil {
			s.ln.Close()
		}
		for conn := range s.conns {
			conn.Close()
		}
	})
}

// Register conn so Stop can close it. Returns false once the server stopped.
func (s *Server) track(conn net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped() {
		return false
	}
	s.conns[conn] = struct{}{}
	return true
}

func (s *Server) untrack(conn net.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.conns, conn)
}

func (s *Server) OpenConns() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.conns)
}

func (s *Server) stopped() bool {
	select {
	case <-s.quitCh:
		return true
	default:
		return false
	}
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			if s.stopped() {
				return
			}
			fmt.Println("Accept error:", err)
			continue
		}

		go s.handleConnection(conn)
	}
}

// Serve requests on conn until the client hangs up. Every request gets
// exactly one reply.
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()
	if !s.track(conn) {
		return
	}
	defer s.untrack(conn)

	r := bufio.NewReader(conn)
	for {
		req, err := resp.Read(r)
		if errors.Is(err, resp.ErrEmptyLine) {
			continue
		}
		if err != nil {
			if err == io.EOF || s.stopped() {
				return
			}

			// The stream can not be resynchronized after a malformed request.
			fmt.Println("Error while reading request:", err)
			conn.Write([]byte(resp.SerializeError(err)))
			return
		}

		out, err := resp.Serialize(s.handle(req))
		if err != nil {
			out = resp.SerializeError(err)
		}

		if _, err := conn.Write([]byte(out)); err != nil {
			fmt.Println("Error while writing reply:", err)
			return
		}
	}
}

func (s *Server) handle(req any) any {
	args, err := requestArgs(req)
	if err != nil {
		return err
	}

	cmd, err := ParseCommand(args)
	if err != nil {
		return err
	}

	return s.execute(cmd)
}

func (s *Server) execute(cmd *Command) any {
	switch cmd.Kind {
	case CmdVersion:
		return "Txlog server version " + TxlogVersion
	case CmdPing:
		return resp.SimpleString("PONG")
	case CmdKeys:
		return s.db.Keys()
	case CmdDbSize:
		return s.db.Size()
	case CmdDel:
		return s.db.Del(cmd.Keys...)
	case CmdFlushAll:
		s.db.FlushAll()
		return resp.SimpleString("OK")
	case CmdLogAppend:
		return s.appendValues(db.ObjLog, cmd)
	case CmdBiLogAppend:
		return s.appendValues(db.ObjBiLog, cmd)
	case CmdLogPop:
		return s.pop(db.ObjLog, cmd.Key)
	case CmdBiLogPop:
		return s.pop(db.ObjBiLog, cmd.Key)
	case CmdLogLen:
		return s.length(db.ObjLog, cmd.Key)
	case CmdBiLogLen:
		return s.length(db.ObjBiLog, cmd.Key)
	case CmdLogRange:
		return s.values(s.db.Range(db.ObjLog, cmd.Key))
	case CmdBiLogRange:
		return s.values(s.db.Range(db.ObjBiLog, cmd.Key))
	case CmdBiLogRevRange:
		return s.values(s.db.RevRange(cmd.Key))
	}

	return ErrUnknownCmd(fmt.Sprint(cmd.Kind))
}

func (s *Server) appendValues(kind db.EntryType, cmd *Command) any {
	n, err := s.db.Append(kind, cmd.Key, cmd.Values...)
	if err != nil {
		return err
	}

	return n
}

func (s *Server) pop(kind db.EntryType, key string) any {
	value, ok, err := s.db.Pop(kind, key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	return value
}

func (s *Server) length(kind db.EntryType, key string) any {
	n, err := s.db.Len(kind, key)
	if err != nil {
		return err
	}

	return n
}

func (s *Server) values(values []string, err error) any {
	if err != nil {
		return err
	}

	return values
}

func main() {
	server := NewServer(getServerOptions())
	if err := server.Start(); err != nil {
		fmt.Println(err)
	}
}
