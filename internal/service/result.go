package service

// Result is the outcome of a nutrition lookup. It is one of Match, NotFound or
// Failure; no other type implements it.
type Result interface {
	isResult()
}

// Match is a food record found in FoodData Central.
type Match struct {
	FDCID       int             `json:"fdcId"`
	Description string          `json:"description"`
	DataType    string          `json:"dataType"`
	Nutrients   []NutrientEntry `json:"nutrients"`
}

// NutrientEntry is one nutrient with a positive amount.
type NutrientEntry struct {
	NutrientID   *int    `json:"nutrientId"`
	NutrientName string  `json:"nutrientName"`
	Value        float64 `json:"value"`
	UnitName     string  `json:"unitName"`
}

// NotFound means the label was rejected or FoodData Central had no match.
type NotFound struct {
	Message string `json:"message"`
}

// Failure means the lookup could not run: missing credential or upstream error.
type Failure struct {
	Error string `json:"error"`
}

func (Match) isResult()    {}
func (NotFound) isResult() {}
func (Failure) isResult()  {}
