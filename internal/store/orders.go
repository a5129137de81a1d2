package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SamuelOla04/wig-ecom-store/internal/models"
	"github.com/SamuelOla04/wig-ecom-store/internal/orders"
)

func (s *Store) Get(id string) (*models.Order, error) {
	query := `SELECT id, customer_name, customer_email, items, total_amount, order_date, delivery_date, emails_sent FROM orders WHERE id = ?`
	order, err := scanOrder(s.DB.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, orders.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *Store) Put(order *models.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to encode order items: %w", err)
	}
	query := `
		INSERT INTO orders (id, customer_name, customer_email, items, total_amount, order_date, delivery_date, emails_sent)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			customer_name = excluded.customer_name,
			customer_email = excluded.customer_email,
			items = excluded.items,
			total_amount = excluded.total_amount,
			order_date = excluded.order_date,
			delivery_date = excluded.delivery_date,
			emails_sent = excluded.emails_sent
	`
	_, err = s.DB.Exec(query, order.ID, order.CustomerName, order.CustomerEmail, string(items),
		order.TotalAmount, order.OrderDate, order.DeliveryDate, order.EmailsSent)
	return err
}

func (s *Store) Delete(id string) error {
	_, err := s.DB.Exec(`DELETE FROM orders WHERE id = ?`, id)
	return err
}

func (s *Store) ForEach(fn func(order *models.Order) error) error {
	query := `SELECT id, customer_name, customer_email, items, total_amount, order_date, delivery_date, emails_sent FROM orders`
	rows, err := s.DB.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	var all []*models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return err
		}
		all = append(all, order)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, order := range all {
		if err := fn(order); err != nil {
			return err
		}
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner) (*models.Order, error) {
	var o models.Order
	var items string
	if err := row.Scan(&o.ID, &o.CustomerName, &o.CustomerEmail, &items,
		&o.TotalAmount, &o.OrderDate, &o.DeliveryDate, &o.EmailsSent); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(items), &o.Items); err != nil {
		return nil, fmt.Errorf("failed to decode order items: %w", err)
	}
	return &o, nil
}
