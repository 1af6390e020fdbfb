package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sumanth2354/ITAttendance/app/config"
	"github.com/sumanth2354/ITAttendance/app/database"
	"github.com/sumanth2354/ITAttendance/app/models"
)

// Creates a login account; used to bootstrap the first admin.
func main() {
	username := flag.String("username", "", "login username")
	password := flag.String("password", "", "login password")
	name := flag.String("name", "", "display name")
	role := flag.String("role", models.RoleAdmin, "account role (admin, teacher, student)")
	flag.Parse()

	if *username == "" || *password == "" || *name == "" {
		flag.Usage()
		os.Exit(1)
	}

	config.Load()
	defer config.GetDB().Close()

	user := &models.User{
		Username: *username,
		Password: *password,
		Name:     *name,
		Role:     *role,
	}

	if err := database.CreateUser(config.GetDB(), user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created successfully: %s (%s, %s)\n", user.Name, user.Username, user.Role)
}
