// Command eoskey is a command line front end to the eosecc key library.
package main

func main() {
	Execute()
}
