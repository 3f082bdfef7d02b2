package types

// ClientConf describes where the client connects and how long it waits.
type ClientConf struct {
	Host string `ini:"host"`
	Port int    `ini:"port"`

	// Timeouts are in seconds; 0 disables the corresponding deadline.
	ConnectTimeout int `ini:"connect_timeout"`
	WriteTimeout   int `ini:"write_timeout"`
}

// LogConf contains logging specific configuration
type LogConf struct {
	Level string `ini:"level"`
}

// Config is the client's unified configuration, loaded from client.ini.
type Config struct {
	ClientConf `ini:"client"`
	LogConf    `ini:"log"`
}
