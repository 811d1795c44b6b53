package main

import "github.com/oshokin/lync-update-info/cmd/lync-update-info/cmd"

func main() {
	cmd.Execute()
}
