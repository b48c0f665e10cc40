package main

import "github.com/killallgit/podcaster-api/cmd"

// @title           Podcaster API
// @version         1.0.0
// @description     Publish podcasts with cover art and audio, and browse them by category.
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/podcaster-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /api/v1
// @schemes         http https
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Session token as "Bearer <token>"; the podcasterUserToken cookie is also accepted
func main() {
	cmd.Execute()
}
