package utils

import "fmt"

// DOIPrefix is the registrant prefix assigned to the repository.
const DOIPrefix = "10.1234/"

// GenerateDOI produces a candidate DOI of the form "10.1234/" followed by
// 8 lowercase hex characters. Uniqueness is enforced by the store; callers
// regenerate on collision.
func GenerateDOI() (string, error) {
	suffix, err := GenerateSecureRandomString(4)
	if err != nil {
		return "", fmt.Errorf("failed to generate DOI suffix: %w", err)
	}
	return DOIPrefix + suffix, nil
}
