package email

// Template names an embedded templates/<name>.html file.
type Template string

const (
	TemplateEmployeeChanged Template = "employee_changed"
)
