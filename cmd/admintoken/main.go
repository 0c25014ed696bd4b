// admintoken mints the secret_token cookie value for the admin endpoints.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/mreiner/compquote/internal/pkg/constants"
	"github.com/mreiner/compquote/internal/pkg/utils"
)

func main() {
	secret := flag.String("secret", "", "admin secret (defaults to COMPQUOTE_ADMIN_SECRET)")
	userID := flag.Int64("user-id", 1, "operator id to embed in the token")
	flag.Parse()

	viper.SetEnvPrefix("COMPQUOTE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if *secret != "" {
		viper.Set(constants.ViperSecretKey, *secret)
	}

	if viper.GetString(constants.ViperSecretKey) == "" {
		fmt.Fprintln(os.Stderr, "no admin secret configured")
		os.Exit(1)
	}

	token, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{
		UserID: *userID,
		Secret: viper.GetString(constants.ViperSecretKey),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	fmt.Println(token)
}
