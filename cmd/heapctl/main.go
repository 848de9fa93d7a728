// Command heapctl drives a best-fit heap from the command line.
package main

func main() {
	execute()
}
