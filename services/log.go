package services

import "stayhub/services/logger"

// Log is the shared application logger
var Log logger.Logger = logger.NewDefaultLogger(logger.InfoLevel)
