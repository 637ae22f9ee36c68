package domain

// Session is the server-side state bound to the user_sid cookie. It holds a
// copy of the user's access-key and role taken at establishment time; the
// token guard later requires the copy to still match both the bearer token
// and the stored user.
type Session struct {
	AccessToken string `json:"access_token"`
	Role        Role   `json:"role"`
}
