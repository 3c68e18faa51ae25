package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
)

var ctx = context.Background()

func GetClient(addr string) *redis.Client {
	txlog := redis.NewClient(&redis.Options{
		Addr:             addr,
		Protocol:         2,
		DisableIndentity: true,
	})

	err := txlog.Ping(ctx).Err()
	if err != nil {
		fmt.Println("Could not connect to Txlog server, make sure it is running")
		fmt.Println(err)
		os.Exit(1)
	}

	return txlog
}

func main() {
	var addr string
	flag.StringVar(&addr, "addr", "localhost:5678", "Address of the Txlog server")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Println("Usage: client [-addr host:port] <command> [args...]")
		os.Exit(2)
	}

	txlog := GetClient(addr)
	defer txlog.Close()

	args := make([]any, flag.NArg())
	for i, a := range flag.Args() {
		args[i] = a
	}

	res, err := txlog.Do(ctx, args...).Result()
	if err == redis.Nil {
		fmt.Println("<nil>")
		return
	}
	if err != nil {
		fmt.Println("[ERROR]:", err)
		os.Exit(1)
	}

	switch res := res.(type) {
	case []any:
		for _, v := range res {
			fmt.Println(v)
		}
	default:
		fmt.Println(res)
	}
}
