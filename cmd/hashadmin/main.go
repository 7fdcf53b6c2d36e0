// Command hashadmin reads the admin password from stdin and prints the
// value for ADMIN_PASSWORD_HASH.
package main

import (
	"bufio"
	"fmt"
	"os"

	"go.uber.org/zap"

	"shootbook/pkg/utils"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	password, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && password == "" {
		logger.Fatal("read password from stdin", zap.Error(err))
	}

	hash, err := utils.HashAdminPassword(password)
	if err != nil {
		logger.Fatal("hash admin password", zap.Error(err))
	}
	fmt.Println(hash)
}
