package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/SamuelOla04/wig-ecom-store/internal/catalog"
	"github.com/SamuelOla04/wig-ecom-store/internal/mailer"
	"github.com/SamuelOla04/wig-ecom-store/internal/models"
)

func main() {
	previewCmd := flag.NewFlagSet("preview-email", flag.ExitOnError)
	daysLeft := previewCmd.Int("days", -1, "Days-left value for a countdown email; omit for the confirmation email")

	if len(os.Args) < 2 {
		fmt.Println("expected 'catalog' or 'preview-email' subcommand")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "catalog":
		listCatalog()
	case "preview-email":
		previewCmd.Parse(os.Args[2:])
		previewEmail(*daysLeft)
	default:
		fmt.Println("expected 'catalog' or 'preview-email' subcommand")
		os.Exit(1)
	}
}

func listCatalog() {
	for id, p := range catalog.Default().All() {
		fmt.Printf("%s  %-28s %s\n", id, p.Name, p.PriceDisplay)
	}
}

// previewEmail prints a rendered email to stdout using a sample order, so
// template changes can be eyeballed without sending anything.
func previewEmail(daysLeft int) {
	now := time.Now()
	order := &models.Order{
		ID:            "cs_test_preview",
		CustomerName:  "Sample Customer",
		CustomerEmail: "sample@example.com",
		Items: []models.OrderItem{
			{Name: "The 'Malibu' Blonde Wig", Quantity: 2, Price: 54999},
		},
		TotalAmount:  109998,
		OrderDate:    now,
		DeliveryDate: now.AddDate(0, 0, 7),
	}

	var msg mailer.Message
	if daysLeft < 0 {
		msg = mailer.ConfirmationMessage(order)
	} else {
		var err error
		msg, err = mailer.CountdownMessage(order, daysLeft)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	fmt.Println("Subject:", msg.Subject)
	fmt.Println()
	fmt.Println(msg.Text)
}
