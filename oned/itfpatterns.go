package oned

// itfPatterns holds the narrow/wide bar-width pattern for each digit 0-9,
// five elements per digit.
var itfPatterns = [10][5]int{
	{1, 1, 3, 3, 1}, // 0
	{3, 1, 1, 1, 3}, // 1
	{1, 3, 1, 1, 3}, // 2
	{3, 3, 1, 1, 1}, // 3
	{1, 1, 3, 1, 3}, // 4
	{3, 1, 3, 1, 1}, // 5
	{1, 3, 3, 1, 1}, // 6
	{1, 1, 1, 3, 3}, // 7
	{3, 1, 1, 3, 1}, // 8
	{1, 3, 1, 3, 1}, // 9
}
