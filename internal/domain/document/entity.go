package document

import "time"

type Category string

const (
	CategoryContract    Category = "contract"
	CategoryIdentity    Category = "identity"
	CategoryCertificate Category = "certificate"
	CategoryMedical     Category = "medical"
	CategoryOther       Category = "other"
)

var CategoryValues = []string{
	string(CategoryContract),
	string(CategoryIdentity),
	string(CategoryCertificate),
	string(CategoryMedical),
	string(CategoryOther),
}

// Document is a file attached to an employee record, such as a contract or a
// medical certificate supporting a sick-leave request.
type Document struct {
	ID          string
	EmployeeID  string
	UploadedBy  string
	Category    Category
	FileName    string
	FilePath    string
	ContentType string
	SizeBytes   int64
	Note        *string
	CreatedAt   time.Time
	DeletedAt   *time.Time
}
