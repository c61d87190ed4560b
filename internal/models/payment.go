package models

import (
	"time"
)

// Payment 支付记录模型
type Payment struct {
	PaymentID     int64     `gorm:"column:PaymentID;primaryKey;autoIncrement" json:"payment_id"`
	ReservationID int64     `gorm:"column:ReservationID;index;not null" json:"reservation_id"`
	Amount        float64   `gorm:"column:Amount;type:decimal(10,2);not null" json:"amount"`
	PaymentMethod string    `gorm:"column:PaymentMethod;type:varchar(20);not null" json:"payment_method"`
	PaymentStatus string    `gorm:"column:PaymentStatus;type:varchar(20);not null;default:'Pending'" json:"payment_status"`
	PaymentDate   time.Time `gorm:"column:PaymentDate;autoCreateTime" json:"payment_date"`

	// 关联
	Reservation *Reservation `gorm:"foreignKey:ReservationID;references:ReservationID" json:"reservation,omitempty"`
}

// TableName 表名
func (Payment) TableName() string {
	return "PAYMENT"
}

// 支付方式
const (
	PaymentMethodCreditCard   = "Credit Card"
	PaymentMethodCash         = "Cash"
	PaymentMethodBankTransfer = "Bank Transfer"
	PaymentMethodDebitCard    = "Debit Card"
)

// ValidPaymentMethods 合法的支付方式集合
var ValidPaymentMethods = []string{
	PaymentMethodCreditCard,
	PaymentMethodCash,
	PaymentMethodBankTransfer,
	PaymentMethodDebitCard,
}

// 支付状态
const (
	PaymentStatusPending   = "Pending"
	PaymentStatusCompleted = "Completed"
	PaymentStatusFailed    = "Failed"
	PaymentStatusRefunded  = "Refunded"
)

// ValidPaymentStatuses 合法的支付状态集合
var ValidPaymentStatuses = []string{
	PaymentStatusPending,
	PaymentStatusCompleted,
	PaymentStatusFailed,
	PaymentStatusRefunded,
}

// IsValidPaymentMethod 检查支付方式是否合法
func IsValidPaymentMethod(method string) bool {
	for _, m := range ValidPaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

// IsValidPaymentStatus 检查支付状态是否合法
func IsValidPaymentStatus(status string) bool {
	for _, s := range ValidPaymentStatuses {
		if s == status {
			return true
		}
	}
	return false
}
