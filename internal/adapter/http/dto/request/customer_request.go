package request

type CustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Gender  string `json:"gender"`
	Notes   string `json:"notes"`
}

type VehicleRequest struct {
	LicensePlate  string `json:"license_plate"`
	Brand         string `json:"brand"`
	Model         string `json:"model"`
	Year          int    `json:"year"`
	Color         string `json:"color"`
	ChassisNumber string `json:"chassis_number"`
	EngineNumber  string `json:"engine_number"`
	IsPrimary     bool   `json:"is_primary"`
}
