package utils

// Atwater factors: 4 kcal per gram of protein or carbohydrate, 9 per gram of fat.
func Calories(proteins, fat, carbs float64) float64 {
	return proteins*4 + fat*9 + carbs*4
}
