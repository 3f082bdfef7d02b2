package connector

const (
	// Greeting is the only payload the client ever writes. It goes out as
	// raw UTF-8: no length prefix, no terminator.
	Greeting = "Hello Server"

	// DisconnectSentinel is reserved for ending a session. Nothing sends it.
	DisconnectSentinel = "!DISCONNECT"
)

// GreetingBytes returns a fresh copy of the encoded greeting.
func GreetingBytes() []byte {
	return []byte(Greeting)
}
