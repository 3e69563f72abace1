// @title Codash activity API
// @description Cross-platform coding-activity calendar and analytics
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/yash-070702/Codash-next/internal/api"
	"github.com/yash-070702/Codash-next/internal/platform"
	"github.com/yash-070702/Codash-next/internal/service"
	"github.com/yash-070702/Codash-next/pkg/cleanup"
	"github.com/yash-070702/Codash-next/pkg/config"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	activityService := service.NewActivityService(
		cfg.GetIntOr("YEAR_FETCH_FANOUT", 4),
		platform.NewLeetCode(cfg.GetString("LEETCODE_API_URL"), nil),
		platform.NewCodeforces(cfg.GetString("CODEFORCES_API_URL"), nil),
		platform.NewCodeChef(cfg.GetString("CODECHEF_API_URL"), nil),
		platform.NewGFG(cfg.GetString("GFG_API_URL"), nil),
	)
	serv := api.New(&api.ServicesList{
		ActivityService: activityService,
	})
	err := serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
