// Package notification holds the messages sellers receive about their orders.
package notification

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/pkg/errs"
	"oja/internal/pkg/guard"
)

// ErrNotificationIsNotConstructed is returned for a Notification that bypassed its constructors.
var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")

// Notification tells a seller that something happened to one of their orders.
type Notification struct {
	id        kernel.UUID
	sellerID  kernel.UUID
	orderID   kernel.UUID
	message   string
	read      bool
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewNotification creates an unread notification.
func NewNotification(id, sellerID, orderID kernel.UUID, message string, createdAt time.Time) (*Notification, error) {
	return RestoreNotification(id, sellerID, orderID, message, false, createdAt)
}

// NewOrderPlaced builds the notification sent to the seller when a buyer checks out.
func NewOrderPlaced(sellerID, orderID kernel.UUID, itemCount int, total int64, createdAt time.Time) (*Notification, error) {
	msg := fmt.Sprintf("New order %s: %d item(s), total %d", orderID, itemCount, total)
	return NewNotification(kernel.NewUUID(), sellerID, orderID, msg, createdAt)
}

// RestoreNotification rebuilds a Notification from storage.
func RestoreNotification(
	id, sellerID, orderID kernel.UUID,
	message string,
	read bool,
	createdAt time.Time,
) (*Notification, error) {
	var errList []error
	if err := id.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := sellerID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("seller", err))
	}
	if err := orderID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("order", err))
	}
	if strings.TrimSpace(message) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("message"))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Notification{
		id:        id,
		sellerID:  sellerID,
		orderID:   orderID,
		message:   message,
		read:      read,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

func (n *Notification) ID() kernel.UUID       { return n.id }
func (n *Notification) SellerID() kernel.UUID { return n.sellerID }
func (n *Notification) OrderID() kernel.UUID  { return n.orderID }
func (n *Notification) Message() string       { return n.message }
func (n *Notification) IsRead() bool          { return n.read }
func (n *Notification) CreatedAt() time.Time  { return n.createdAt }
