package configs

// Firebase identifies the Firebase project. When CredentialsFile is empty
// Application Default Credentials are used.
type Firebase struct {
	ProjectID       string `env:"PROJECT_ID"`
	CredentialsFile string `env:"CREDENTIALS_FILE"`
}
