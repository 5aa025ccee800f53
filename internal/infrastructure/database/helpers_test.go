package database

import "self-fitness/config"

func testDBConfig() config.DBConfig {
	return config.DBConfig{
		Host:     "db",
		Port:     "5432",
		User:     "u",
		Password: "p",
		Name:     "self",
		SSLMode:  "disable",
		TimeZone: "Asia/Shanghai",
	}
}
