package main

// @title BookMart APIs
// @version 1.0
// @description BookMart storefront API with a conversational shopping assistant.

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
// @schemes http
import (
	_ "bookmart/docs"
	protocol "bookmart/protocal"

	_ "github.com/arsmn/fiber-swagger/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	err := protocol.ServeHTTP()
	if err != nil {
		logrus.Println(err)
	}
}
