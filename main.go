package main

import (
	"context"
	"time"

	"github.com/shandysiswandi/ayola/internal/app"
)

// @title           Ayola API
// @version         1.0
// @description     Ayola provides account registration, login and the screen flow of the Ayola mobile front-end.
// @contact.name    Contact Support
// @license.name    MIT
// @license.url     https://mit-license.org/
// @server          http://localhost:8080
func main() {
	application := app.New()    // Initialize the application
	wait := application.Start() // Start the application and wait for the termination signal
	<-wait                      // Wait for the application to receive a termination signal
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	application.Stop(ctx) // Stop the application gracefully
}
