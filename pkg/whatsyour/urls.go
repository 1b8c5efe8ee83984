package whatsyour

import "fmt"

// DefaultAvatarSize is the pixel size used by GenerateAvatarURL when size <= 0.
const DefaultAvatarSize = 200

func GenerateProfileURL(username string) string {
	return fmt.Sprintf("https://whatsyour.info/%s", username)
}

func GenerateSubdomainURL(username string) string {
	return fmt.Sprintf("https://%s.whatsyour.info", username)
}

// GenerateAvatarURL returns the avatar image URL for username at size pixels.
func GenerateAvatarURL(username string, size int) string {
	if size <= 0 {
		size = DefaultAvatarSize
	}
	return fmt.Sprintf("https://whatsyour.info/api/avatars/%s?size=%d", username, size)
}
