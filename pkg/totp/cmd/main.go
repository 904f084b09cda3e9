package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/dmitrymomot/totpqr/pkg/totp"
)

func main() {
	issuer := flag.String("issuer", "TOTP Demo", "issuer shown in the authenticator app")
	account := flag.String("account", "hello@example.com", "account label shown in the authenticator app")
	size := flag.Int("size", totp.DefaultSecretSize, "secret length in bytes")
	flag.Parse()

	secret, err := totp.GenerateSecret(*size)
	if err != nil {
		log.Fatalf("Failed to generate secret: %v", err)
	}

	uri, err := totp.BuildProvisioningURI(*issuer, *account, secret)
	if err != nil {
		log.Fatalf("Failed to build provisioning URI: %v", err)
	}

	fmt.Printf("Generated TOTP secret (for TOTP_SECRET env var): \n———\n%s\n———\n", secret)
	fmt.Printf("Provisioning URI: \n———\n%s\n———\n", uri)
}
