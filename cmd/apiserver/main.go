package main

// @title           OMS Backend API
// @version         1.0
// @description     订单管理后端 API，提供订单与订单项的增删改查、价格汇总
// @BasePath        /api/v1

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
