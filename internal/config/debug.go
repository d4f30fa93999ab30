package config

import "os"

func IsDebug() bool {
	return os.Getenv("MEMBERQA_DEBUG") == "1"
}
