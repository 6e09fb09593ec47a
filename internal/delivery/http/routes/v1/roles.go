package v1

import "talent-match/internal/pkg/jwt"

var (
	seekerRoles    = []string{jwt.RoleJobSeeker}
	companyRoles   = []string{jwt.RoleCompany}
	candidateRoles = []string{jwt.RoleCompany, jwt.RoleOMIL, jwt.RoleAdmin}
)
