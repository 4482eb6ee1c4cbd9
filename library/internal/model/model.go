package model

import "time"

type Category string

const (
	CategoryComputer Category = "COMPUTER"
	CategoryScience  Category = "SCIENCE"
	CategorySociety  Category = "SOCIETY"
	CategoryEconomy  Category = "ECONOMY"
	CategoryLanguage Category = "LANGUAGE"
)

type Book struct {
	ID   int      `json:"-" db:"id"`
	Name string   `json:"name" db:"name"`
	Type Category `json:"type" db:"type"`
}

type User struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Age  *int   `json:"age" db:"age"`
}

type LoanStatus string

const (
	StatusLoaned   LoanStatus = "LOANED"
	StatusReturned LoanStatus = "RETURNED"
)

type LoanRecord struct {
	ID        int        `json:"-" db:"id"`
	RecordUid string     `json:"recordUid" db:"record_uid"`
	UserID    int        `json:"-" db:"user_id"`
	BookName  string     `json:"bookName" db:"book_name"`
	Status    LoanStatus `json:"status" db:"status"`
}

type CreateBookRequest struct {
	Name string   `json:"name"`
	Type Category `json:"type" validate:"required,oneof=COMPUTER SCIENCE SOCIETY ECONOMY LANGUAGE"`
}

type CreateUserRequest struct {
	Name string `json:"name" validate:"required"`
	Age  *int   `json:"age" validate:"omitempty,gte=0"`
}

type UpdateUserRequest struct {
	ID   int    `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}

type LoanRequest struct {
	UserName string `json:"userName" validate:"required"`
	BookName string `json:"bookName" validate:"required"`
}

type CategoryStat struct {
	Type  Category `json:"type" db:"type"`
	Count int      `json:"count" db:"count"`
}

type LoanedBook struct {
	Name     string `json:"name"`
	Returned bool   `json:"returned"`
}

type UserLoanHistory struct {
	Name  string       `json:"name"`
	Books []LoanedBook `json:"books"`
}

type LoanCount struct {
	Count int `json:"count"`
}

// UserLoanRow is the flat users x loan_history join shape the history
// view is assembled from. Loan columns are null for users without records.
type UserLoanRow struct {
	UserID   int     `db:"user_id"`
	UserName string  `db:"user_name"`
	BookName *string `db:"book_name"`
	Status   *string `db:"status"`
}

type LoanEventRecord struct {
	ID        int       `json:"-" db:"id"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	RecordUid string    `json:"recordUid" db:"record_uid"`
	UserName  string    `json:"username" db:"username"`
	BookName  string    `json:"bookName" db:"book_name"`
	EventType string    `json:"eventType" db:"event_type"`
}
