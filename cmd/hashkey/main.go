// Command hashkey reads an API key from stdin and prints the bcrypt hash to put in API_KEYS.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"poapregistry/internal/adapters/auth"
)

func main() {
	cost := flag.Int("cost", auth.DefaultCost, "bcrypt cost")
	address := flag.String("address", "", "caller address; when set the output is an API_KEYS entry")
	flag.Parse()

	key, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && key == "" {
		fmt.Fprintln(os.Stderr, "read key:", err)
		os.Exit(1)
	}
	key = strings.TrimRight(key, "\r\n")
	if key == "" {
		fmt.Fprintln(os.Stderr, "empty key")
		os.Exit(1)
	}

	hash, err := auth.NewBcryptHasher(*cost).Hash(key)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *address != "" {
		fmt.Printf("%s:%s\n", *address, hash)
		return
	}
	fmt.Println(hash)
}
