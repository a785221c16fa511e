package shopify

const cartFields = `
  id
  checkoutUrl
  lines(first: 10) {
    edges {
      node {
        id
        quantity
        merchandise {
          ... on ProductVariant {
            id
            title
            priceV2 { amount currencyCode }
            product {
              title
              handle
              images(first: 1) { edges { node { url altText } } }
            }
          }
        }
      }
    }
  }
  cost {
    totalAmount { amount currencyCode }
    subtotalAmount { amount currencyCode }
  }
`

const productCardFields = `
  id
  title
  description
  handle
  productType
  tags
  images(first: 1) { edges { node { url altText } } }
  priceRange { minVariantPrice { amount currencyCode } }
  compareAtPriceRange { minVariantPrice { amount currencyCode } }
  variants(first: 1) {
    edges { node { id title priceV2 { amount currencyCode } availableForSale } }
  }
`

const productsQuery = `
query GetProducts($first: Int!) {
  products(first: $first) {
    edges { node {` + productCardFields + `} }
  }
}`

const collectionProductsQuery = `
query GetCollectionProducts($handle: String!, $first: Int!) {
  collection(handle: $handle) {
    products(first: $first) {
      edges { node {` + productCardFields + `} }
    }
  }
}`

const searchProductsQuery = `
query SearchProducts($query: String!, $first: Int!) {
  products(first: $first, query: $query) {
    edges { node {` + productCardFields + `} }
  }
}`

const productQuery = `
query GetProduct($handle: String!) {
  product(handle: $handle) {
    id
    title
    description
    descriptionHtml
    handle
    productType
    tags
    images(first: 10) { edges { node { url altText } } }
    priceRange { minVariantPrice { amount currencyCode } }
    compareAtPriceRange { minVariantPrice { amount currencyCode } }
    variants(first: 10) {
      edges { node { id title priceV2 { amount currencyCode } availableForSale } }
    }
  }
}`

const cartQuery = `
query GetCart($cartId: ID!) {
  cart(id: $cartId) {` + cartFields + `}
}`

const cartCreateMutation = `
mutation CreateCart($buyerIdentity: CartBuyerIdentityInput) {
  cartCreate(input: { buyerIdentity: $buyerIdentity }) {
    cart {` + cartFields + `}
    userErrors { field message }
  }
}`

const cartLinesAddMutation = `
mutation AddToCart($cartId: ID!, $lines: [CartLineInput!]!) {
  cartLinesAdd(cartId: $cartId, lines: $lines) {
    cart {` + cartFields + `}
    userErrors { field message }
  }
}`

const cartLinesUpdateMutation = `
mutation UpdateCart($cartId: ID!, $lines: [CartLineUpdateInput!]!) {
  cartLinesUpdate(cartId: $cartId, lines: $lines) {
    cart {` + cartFields + `}
    userErrors { field message }
  }
}`

const cartLinesRemoveMutation = `
mutation RemoveFromCart($cartId: ID!, $lineIds: [ID!]!) {
  cartLinesRemove(cartId: $cartId, lineIds: $lineIds) {
    cart {` + cartFields + `}
    userErrors { field message }
  }
}`
