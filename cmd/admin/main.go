package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"fleetportal/backend/internal/config"
	"fleetportal/backend/internal/directory"
	"fleetportal/backend/internal/moderation"
	"fleetportal/backend/internal/storage"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// admin is the operator CLI: it works directly against the sqlite
// partitions, so it must run on the same host as the portal.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	parts, err := storage.Open(cfg.DataDir, nil) // no cache needed for one-shot commands
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}
	defer parts.Close()

	zlog := zap.NewNop()
	dir := directory.NewService(parts.Users, zlog)
	mod := moderation.NewService(parts.Faults, parts.Courses, nil, zlog)

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <seed|create-user|approve|pending> [args]")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "seed":
		if err := dir.SeedDefaults(); err != nil {
			log.Fatalf("Error seeding accounts: %v", err)
		}
		fmt.Println("Default accounts seeded.")
	case "create-user":
		if len(os.Args) != 6 {
			fmt.Println("Usage: admin create-user <admin_username> <username> <password> <role>")
			os.Exit(1)
		}
		user, err := dir.CreateUser(os.Args[2], os.Args[3], os.Args[4], os.Args[5])
		if err != nil {
			log.Fatalf("Error creating user: %v", err)
		}
		fmt.Printf("User %s (%s) created with id %d.\n", user.Username, user.Role, user.ID)
	case "approve":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin approve <fault_id>")
			os.Exit(1)
		}
		id, err := strconv.ParseUint(os.Args[2], 10, 64)
		if err != nil {
			fmt.Println("Invalid fault ID. Please provide an integer.")
			os.Exit(1)
		}
		outcome, err := mod.Approve(uint(id))
		if err != nil {
			log.Fatalf("Error approving fault: %v", err)
		}
		switch outcome {
		case moderation.Approved:
			fmt.Printf("Fault %d approved.\n", id)
		case moderation.AlreadyApproved:
			fmt.Printf("Fault %d was already approved.\n", id)
		case moderation.NotFound:
			fmt.Printf("No fault with id %d.\n", id)
		}
	case "pending":
		faults, err := mod.ListPending()
		if err != nil {
			log.Fatalf("Error listing pending faults: %v", err)
		}
		for _, f := range faults {
			fmt.Printf("#%d  %s: %s\n", f.ID, f.Username, f.Issue)
		}
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}
