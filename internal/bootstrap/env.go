package bootstrap

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Loadenv reads .env if present and warns about unset optional settings.
func Loadenv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	for _, key := range []string{"CLOUDINARY_CLOUD_NAME", "CLOUDINARY_UPLOAD_PRESET"} {
		if os.Getenv(key) == "" {
			log.Printf("%s is not set, file uploads will be rejected", key)
		}
	}
}
