package trip

func isValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

func isValidLongitude(lng float64) bool {
	return lng >= -180 && lng <= 180
}

func isValidSpeed(speed float64) bool {
	return speed >= 0
}

func isValidBattery(level int) bool {
	return level >= 0 && level <= 100
}
