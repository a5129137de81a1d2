package mailer

import (
	"fmt"
	"strings"

	"github.com/SamuelOla04/wig-ecom-store/internal/models"
)

// Message is a rendered email ready for the transport.
type Message struct {
	Subject string
	HTML    string
	Text    string
}

// countdownCopy holds the fixed per-day reminder wording.
type countdownCopy struct {
	Emoji   string
	Message string
}

var countdownCopies = map[int]countdownCopy{
	6: {"🚛", "Your amazing new wig is on its way!"},
	5: {"📦", "Just 5 more days until your wig arrives!"},
	4: {"⏰", "Getting closer! 4 days to go!"},
	3: {"✨", "Only 3 days left - almost there!"},
	2: {"🎉", "Just 2 more days - prepare for your new look!"},
	1: {"🎊", "Tomorrow is the day! Your wig arrives soon!"},
	0: {"🎁", "Delivery day is here! Your wig should arrive today!"},
}

// formatAmount renders minor units as a dollar string, e.g. 109998 -> $1099.98.
func formatAmount(minor int64) string {
	return fmt.Sprintf("$%.2f", float64(minor)/100)
}

// ConfirmationMessage renders the order-confirmation email.
func ConfirmationMessage(order *models.Order) Message {
	var htmlItems, textItems strings.Builder
	for _, item := range order.Items {
		lineTotal := formatAmount(item.Price * item.Quantity)
		fmt.Fprintf(&htmlItems, "<p>• %s (Qty: %d) - %s</p>\n", item.Name, item.Quantity, lineTotal)
		fmt.Fprintf(&textItems, "• %s (Qty: %d) - %s\n", item.Name, item.Quantity, lineTotal)
	}
	total := formatAmount(order.TotalAmount)
	delivery := order.DeliveryDate.Format("Mon Jan 2 2006")

	html := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
  .container { max-width: 600px; margin: 0 auto; padding: 20px; }
  .header { background: #000; color: white; padding: 20px; text-align: center; }
  .content { padding: 20px; background: #f9f9f9; }
  .order-details { background: white; padding: 15px; margin: 10px 0; border-radius: 5px; }
  .shipping-info { background: #e8f4f8; padding: 15px; border-left: 4px solid #2196F3; }
  .footer { text-align: center; padding: 20px; color: #666; }
</style>
</head>
<body>
<div class="container">
  <div class="header">
    <h1>LUXE WIGS</h1>
    <p>Thank you for your order!</p>
  </div>
  <div class="content">
    <h2>Hi %s,</h2>
    <p>Your order has been confirmed and we're getting it ready for you!</p>
    <div class="order-details">
      <h3>Order #%s</h3>
      <p><strong>Items ordered:</strong></p>
      %s<hr>
      <p><strong>Total: %s</strong></p>
    </div>
    <div class="shipping-info">
      <h3>📦 Shipping Information</h3>
      <p><strong>Expected Delivery:</strong> %s</p>
      <p>Your premium wig will be carefully packaged and shipped to the address provided during checkout.</p>
      <p>You will receive daily countdown reminders and tracking information!</p>
    </div>
    <p>If you have any questions about your order, please don't hesitate to contact us.</p>
  </div>
  <div class="footer">
    <p>Thank you for choosing LUXE WIGS!</p>
    <p>📧 contact@luxewigs.com | 📞 +1 (234) 567-890</p>
  </div>
</div>
</body>
</html>`, order.CustomerName, order.ID, htmlItems.String(), total, delivery)

	text := fmt.Sprintf(`Hi %s,

Thank you for your order with LUXE WIGS!

Order #%s
Items ordered:
%s
Total: %s

SHIPPING INFORMATION:
Expected Delivery: %s
Your premium wig will be carefully packaged and shipped to the address provided during checkout.
You will receive a tracking number once your order ships.

If you have any questions about your order, please contact us at contact@luxewigs.com

Thank you for choosing LUXE WIGS!
`, order.CustomerName, order.ID, textItems.String(), total, delivery)

	return Message{
		Subject: fmt.Sprintf("Order Confirmation - LUXE WIGS #%s", order.ID),
		HTML:    html,
		Text:    text,
	}
}

// CountdownMessage renders the daily reminder for the given days-left value.
// Only 0 through 6 have templates; anything else is a caller bug.
func CountdownMessage(order *models.Order, daysLeft int) (Message, error) {
	copyForDay, ok := countdownCopies[daysLeft]
	if !ok {
		return Message{}, fmt.Errorf("no countdown template for %d days left", daysLeft)
	}

	var htmlItems, textItems strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&htmlItems, "<p>• %s (Qty: %d)</p>\n", item.Name, item.Quantity)
		fmt.Fprintf(&textItems, "• %s (Qty: %d)\n", item.Name, item.Quantity)
	}

	delivery := order.DeliveryDate.Format("Mon Jan 2 2006")
	headline := fmt.Sprintf("%d DAYS", daysLeft)
	sub := fmt.Sprintf("Until your stunning wig arrives on %s", delivery)
	closing := "Your order is being carefully prepared and will be delivered exactly on time!"
	subjectDay := fmt.Sprintf("%d Days Left", daysLeft)
	if daysLeft == 0 {
		headline = "TODAY!"
		sub = "Your delivery should arrive today!"
		closing = "Keep an eye out for your delivery today! Make sure someone is available to receive your package."
		subjectDay = "Delivery Day"
	}

	html := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
  .container { max-width: 600px; margin: 0 auto; padding: 20px; }
  .header { background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); color: white; padding: 30px; text-align: center; }
  .content { padding: 30px; background: #f9f9f9; }
  .countdown { background: white; padding: 25px; margin: 20px 0; border-radius: 10px; text-align: center; border: 3px solid #667eea; }
  .order-summary { background: white; padding: 20px; margin: 15px 0; border-radius: 8px; }
  .footer { text-align: center; padding: 20px; color: #666; }
</style>
</head>
<body>
<div class="container">
  <div class="header">
    <h1>%s LUXE WIGS</h1>
    <p>%s</p>
  </div>
  <div class="content">
    <h2>Hi %s! 👋</h2>
    <div class="countdown">
      <h2>%s</h2>
      <p>%s</p>
    </div>
    <div class="order-summary">
      <h3>📋 Your Order #%s</h3>
      %s
    </div>
    <p>%s</p>
    <p>Questions? Just reply to this email - we're here to help! 💝</p>
  </div>
  <div class="footer">
    <p>Thank you for choosing LUXE WIGS!</p>
    <p>📧 contact@luxewigs.com | 📞 +1 (234) 567-890</p>
  </div>
</div>
</body>
</html>`, copyForDay.Emoji, copyForDay.Message, order.CustomerName, headline, sub, order.ID, htmlItems.String(), closing)

	text := fmt.Sprintf(`Hi %s!

%s

%s
%s

Your Order #%s:
%s
%s

Questions? Just reply to this email - we're here to help!

Thank you for choosing LUXE WIGS!
`, order.CustomerName, copyForDay.Message, headline, sub, order.ID, textItems.String(), closing)

	return Message{
		Subject: fmt.Sprintf("%s %s - LUXE WIGS Order #%s", copyForDay.Emoji, subjectDay, order.ID),
		HTML:    html,
		Text:    text,
	}, nil
}
