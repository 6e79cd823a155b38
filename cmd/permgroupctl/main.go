package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := New().Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "permgroupctl: %v\n", err)
		os.Exit(1)
	}
}
