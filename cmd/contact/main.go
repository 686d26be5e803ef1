// Command contact submits a message through a running portfolio site,
// the same way the contact form on the page does.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"portfolio-site/internal/contactform"
	"portfolio-site/pkg/logger"
)

func main() {
	site := flag.String("site", "http://localhost:8080", "base URL of the portfolio site")
	name := flag.String("name", "", "your name")
	email := flag.String("email", "", "your email")
	message := flag.String("message", "", "message to send")
	timeout := flag.Duration("timeout", 30*time.Second, "request timeout")
	flag.Parse()

	// Same rule as the required inputs on the page
	if *name == "" || *email == "" || *message == "" {
		fmt.Fprintln(os.Stderr, "name, email and message are required")
		flag.Usage()
		os.Exit(2)
	}

	logger.InitWithWriter(os.Stderr, "error")

	poster := contactform.NewHTTPPoster(*site, &http.Client{Timeout: *timeout})
	notifier := contactform.NotifierFunc(func(n contactform.Notification) {
		fmt.Printf("[%s] %s\n", n.Kind, n.Text)
	})

	form := contactform.NewController(poster, notifier)
	form.SetName(*name)
	form.SetEmail(*email)
	form.SetMessage(*message)

	if err := form.Submit(context.Background()); err != nil {
		os.Exit(1)
	}
}
