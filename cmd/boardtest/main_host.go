// cmd/boardtest/main_host.go
//go:build !(rp2040 || rp2350)

package main

// The bring-up stages drive Pico wiring directly; there is nothing to
// exercise on a dev machine.
func main() {
	println("boardtest targets rp2040/rp2350 boards; build with tinygo -target=pico")
}
