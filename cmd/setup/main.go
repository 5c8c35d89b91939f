// Command setup walks through the environment configuration
// interactively and writes the result to a .env file. Press Enter to
// skip optional fields.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

type entry struct {
	key   string
	value string
}

func main() {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("Kwify + Firebase + Email integration setup")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()
	fmt.Println("This script collects the environment variables the service needs.")
	fmt.Println("Press Enter to skip optional fields.")
	fmt.Println()

	var entries []entry
	add := func(key, value string) {
		entries = append(entries, entry{key: key, value: value})
	}

	fmt.Println("FIREBASE")
	fmt.Println(strings.Repeat("-", 30))
	add("FIREBASE_PROJECT_ID", prompt(reader, "Firebase project ID", ""))
	add("FIREBASE_CREDENTIALS_FILE", prompt(reader, "Path to service account JSON", "serviceAccount.json"))

	fmt.Println()
	fmt.Println("EMAIL")
	fmt.Println(strings.Repeat("-", 30))
	smtpUser := prompt(reader, "Sender email (SMTP user)", "")
	add("SMTP_HOST", prompt(reader, "SMTP host", "smtp.gmail.com"))
	add("SMTP_PORT", prompt(reader, "SMTP port", "587"))
	add("SMTP_SECURE", prompt(reader, "SMTP secure (true for port 465)", "false"))
	add("SMTP_USER", smtpUser)
	add("SMTP_PASS", prompt(reader, "SMTP password (or app password)", ""))
	add("FROM_EMAIL", smtpUser)
	add("FROM_NAME", prompt(reader, "Sender display name", "Sistema"))

	fmt.Println()
	fmt.Println("KWIFY")
	fmt.Println(strings.Repeat("-", 30))
	add("KWIFY_WEBHOOK_SECRET", prompt(reader, "Webhook secret (empty disables signature checks)", ""))

	fmt.Println()
	fmt.Println("APPLICATION")
	fmt.Println(strings.Repeat("-", 30))
	add("LOGIN_URL", prompt(reader, "Login page URL (used in the credentials email)", ""))
	add("PASSWORD_LENGTH", prompt(reader, "Generated password length", "12"))
	add("PORT", prompt(reader, "HTTP port", "8080"))

	var buf strings.Builder
	for _, e := range entries {
		if e.value == "" {
			continue
		}
		buf.WriteString(e.key)
		buf.WriteString("=")
		buf.WriteString(e.value)
		buf.WriteString("\n")
	}

	if err := os.WriteFile(".env", []byte(buf.String()), 0o600); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write .env: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Configuration written to .env")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Place the Firebase service account JSON at the configured path")
	fmt.Println("  2. Point the Kwify webhook at POST /api/webhooks/kwify")
	fmt.Println("  3. Start the server: go run ./cmd/server")
}

func prompt(reader *bufio.Reader, label, fallback string) string {
	if fallback != "" {
		fmt.Printf("%s [%s]: ", label, fallback)
	} else {
		fmt.Printf("%s: ", label)
	}

	line, err := reader.ReadString('\n')
	if err != nil {
		return fallback
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return fallback
	}
	return line
}
