package addon

import "github.com/m04kA/SMC-CarRentalService/pkg/dbmetrics"

// DBExecutor интерфейс для выполнения запросов (из dbmetrics)
type DBExecutor = dbmetrics.DBExecutor
