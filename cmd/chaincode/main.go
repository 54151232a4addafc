package main

import (
	"os"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"

	"github.com/bureauchain/diplomachain/internal/chaincode"
	"github.com/bureauchain/diplomachain/internal/pkg/logger"
)

func main() {
	cc, err := contractapi.NewChaincode(&chaincode.DiplomaContract{})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create diploma chaincode")
		os.Exit(1)
	}

	if err := cc.Start(); err != nil {
		logger.Error().Err(err).Msg("Failed to start diploma chaincode")
		os.Exit(1)
	}
}
