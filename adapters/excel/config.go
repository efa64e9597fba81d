package excel

// WorkbookConfig holds configuration for generated workbooks
type WorkbookConfig struct {
	SheetName string `json:"sheet_name"`
}

// DefaultWorkbookConfig returns the layout used for converted measurement groups
func DefaultWorkbookConfig() WorkbookConfig {
	return WorkbookConfig{
		SheetName: "Data",
	}
}
