package helpers

import (
	"crypto/rand"
	"encoding/base64"
	"log"
	"os"

	"github.com/joho/godotenv"
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		// Not fatal, just log the error and continue
		log.Println("Couldn't load .env file:", err)
	}
}

func GetEnvVariable(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("%s not set", key)
	}
	return value
}

// GetEnvVariableOrDefault returns the value of the environment variable or
// the fallback when it is unset. Used for the optional knobs so the render
// endpoints work without a full queue/storage setup.
func GetEnvVariableOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func GenerateRandomString(length int) string {
	// Calculate the number of bytes needed to represent the string
	numBytes := (length * 6) / 8
	if (length*6)%8 != 0 {
		numBytes++
	}

	// Generate random bytes
	randomBytes := make([]byte, numBytes)
	_, err := rand.Read(randomBytes)
	if err != nil {
		log.Println("Error generating random string:", err)
		return ""
	}

	// Encode random bytes to base64
	randomString := base64.URLEncoding.EncodeToString(randomBytes)

	// Trim extra padding characters
	randomString = randomString[:length]

	return randomString
}
