package configs

const (
	AuthProviderJWT      = "jwt"
	AuthProviderFirebase = "firebase"
)

// Auth selects the bearer credential verifier. With the jwt provider,
// tokens are HS256 JWTs signed with JWTSecret whose subject is the actor
// id. With the firebase provider, tokens are Firebase ID tokens.
type Auth struct {
	Provider  string `env:"PROVIDER" envDefault:"jwt"`
	JWTSecret string `env:"JWT_SECRET"`
	// JWTIssuer, when set, must match the iss claim.
	JWTIssuer string `env:"JWT_ISSUER"`
}
