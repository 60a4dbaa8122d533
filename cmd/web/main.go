// @title           TeleMind API
// @version         1.0
// @description     Бэкенд телемедицины: пациенты, врачи, запись на прием.
// @host            localhost:5000
// @BasePath        /

package main

import "telemind_backend/internal/app"

func main() {
	app.Run()
}
