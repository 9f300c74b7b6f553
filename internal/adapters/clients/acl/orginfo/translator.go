package orginfo

import "github.com/jsamuelsen11/oktaorginfo/internal/domain"

// ToDomainOrgInfo converts a downstream OrganizationDTO to a domain OrgInfo.
// Custom domain links are collected from _links.alternate first and the
// top-level alternates array second, in document order. Links without an
// href are dropped.
func ToDomainOrgInfo(dto *OrganizationDTO) domain.OrgInfo {
	var alternates []domain.Link
	for _, l := range dto.Links.Alternate {
		if l.Href != "" {
			alternates = append(alternates, domain.Link{Href: l.Href})
		}
	}
	for _, l := range dto.Alternates {
		if l.Href != "" {
			alternates = append(alternates, domain.Link{Href: l.Href})
		}
	}

	return domain.OrgInfo{
		ID:       dto.ID,
		Pipeline: domain.Pipeline(dto.Pipeline),
		Cell:     dto.Cell,
		Links: domain.Links{
			Organization: domain.Link{Href: dto.Links.Organization.Href},
			Alternates:   alternates,
		},
		Raw: dto.Raw,
	}
}
